package lexer

// SampleProgram is a small C-like program covering every token kind the
// lexicon emits
const SampleProgram = `
    
int main() {

    printf(hello);
    int b = 1 + 3 + 1.06f;
    return 0;

}


`
